// Package main provides a program training a univariate linear regression y = w*x + b
// on integer input-target pairs using batch gradient descent.
package main
