// Package fangraphs is a thin client for the FanGraphs JSON API: the
// fantasy auction calculator and the major-league leaders endpoint,
// including its vs-LHP/vs-RHP team split views.
package fangraphs
