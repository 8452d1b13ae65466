package main

import (
	"image"

	"gocv.io/x/gocv"
)

// matFrame lets astrobox crop a gocv.Mat. Region returns a view that
// shares the parent's pixels; it must be closed and must not outlive the
// parent.
type matFrame struct {
	mat *gocv.Mat
}

func (f matFrame) Rows() int { return f.mat.Rows() }
func (f matFrame) Cols() int { return f.mat.Cols() }

func (f matFrame) Region(r image.Rectangle) matFrame {
	sub := f.mat.Region(r)
	return matFrame{mat: &sub}
}
