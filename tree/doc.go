// Package tree implements the shared search tree and lock-free
// selection/expansion/backpropagation protocol for a parallel Monte
// Carlo Tree Search engine that guides an external combinatorial
// solver. Workers descend the tree with a UCT variant, hand control to
// an external evaluator over a channel.Chan, and fold the evaluator's
// terminal score back into the tree without taking any lock.
package tree
