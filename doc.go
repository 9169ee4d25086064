// Package burrow is the root of a small solver for room-and-hallway sorting
// puzzles: typed pieces start stacked in dead-end rooms below a hallway and
// must all be moved into their own room at minimal total cost.
//
// 🚀 What is inside?
//
//	• A compact, comparable state model with exact move costs
//	• Move generation with safe pruning (go home first, never wander)
//	• An admissible, consistent cost estimate updated per move
//	• A* search with optional path reconstruction and debug logging
//	• A diagram parser and an unfolding helper for deeper rooms
//
// Everything is organized under three packages and one command:
//
//	burrow/      Params, Room, Hall, State, Move; move generation & estimate
//	search/      A* driver: Solve, functional options, Result
//	diagram/     text diagram parsing, compact rows, row insertion
//	cmd/burrow/  command-line front end
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// is four rooms of depth two; its cheapest solution costs 12521.
//
//	go install github.com/katalvlaran/burrow/cmd/burrow@latest
package burrow
