package tui

type state int

const (
	loadingState state = iota
	errorState
	stylesState
	paletteState
	detailState
)
