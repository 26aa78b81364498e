// Package chart renders a live terminal timeline of activity transitions.
//
// It is a thin, independent consumer of the activity signal: a bubbletea
// program that samples the current classification on a fixed cadence and
// draws a scrolling strip of active/inactive cells. The program owns the
// terminal exclusively; no other component touches it. Pressing q or ctrl+c
// exits the chart, after which the pipeline treats the consumer as gone.
package chart
