package main

type Mode int

const (
	ModeNormal Mode = iota
	ModePan
	ModeProperty
	ModeAssist
	ModeExport
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

const (
	toolbarHeight   = 1
	statusHeight    = 1
	layersWidth     = 22
	inspectorWidth  = 32
	minCanvasWidth  = 10
	minCanvasHeight = 4

	panStep   = 20.0 // screen units per pan key press
	wheelStep = 100.0
)
