// Package sample draws the initial universe of a run: n distinct values from
// [1, m], uniformly without replacement, returned in ascending order.
package sample
