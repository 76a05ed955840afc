package asset

import (
	"strconv"

	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/render"
)

// computeGeometry derives container and content geometry from a node's layout
// hints. The branch order is load-bearing: full-width video has its own
// height/aspect/scale cascade, and the image fit override comes last.
func computeGeometry(n node.Node) (render.ContainerGeometry, render.ContentGeometry) {
	var container render.ContainerGeometry
	var content render.ContentGeometry

	f := n.Format()
	t := n.Type()

	if f.FullWidth || f.PageWidth {
		if f.FullWidth {
			container.Width = "100vw"
		} else {
			container.Width = "100%"
		}

		switch {
		case t == node.TypeVideo:
			switch {
			case f.Height > 0:
				container.HeightPx = f.Height
			case f.AspectRatio > 0:
				container.PaddingBottom = ratioPercent(f.AspectRatio)
			case f.PreserveScale:
				content.Fit = render.FitContain
			}
		case f.AspectRatio > 0 && t != node.TypeImage:
			container.PaddingBottom = ratioPercent(f.AspectRatio)
		case f.Height > 0:
			container.HeightPx = f.Height
		case f.PreserveScale:
			if t == node.TypeImage {
				content.Height = "100%"
			} else {
				container.PaddingBottom = "75%"
				container.MinHeightPx = 100
			}
		}
	} else {
		if f.Width > 0 {
			container.WidthPx = f.Width
		}

		switch {
		case f.PreserveScale && t != node.TypeImage:
			container.PaddingBottom = "50%"
			container.MinHeightPx = 100
		case f.AspectRatio > 0 && t != node.TypeImage:
			container.PaddingBottom = ratioPercent(f.AspectRatio)
		case f.Height > 0 && t != node.TypeImage:
			container.HeightPx = f.Height
		}
	}

	// Images always cover; anything preserving scale fits contained.
	if t == node.TypeImage {
		content.Fit = render.FitCover
	} else if f.PreserveScale {
		content.Fit = render.FitContain
	}

	return container, content
}

// ratioPercent renders an aspect ratio as a vertical padding percentage.
func ratioPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', -1, 64) + "%"
}
