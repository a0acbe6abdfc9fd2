package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/spritecut"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC500"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <example.txt>",
	Short: "Summarize an exported track file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("spritecut: %w", err)
		}
		tracks, err := spritecut.ParseExport(data)
		if err != nil {
			return err
		}
		return writeSummary(cmd.OutOrStdout(), args[0], tracks)
	},
}

// writeSummary prints one block per track: name, update rate, frame count,
// the bounding box of all frames and the frames themselves.
func writeSummary(w io.Writer, path string, tracks []spritecut.ExportedTrack) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d tracks", path, len(tracks))))
	b.WriteByte('\n')
	for _, t := range tracks {
		var lines []string
		lines = append(lines, fmt.Sprintf("%s  %s",
			nameStyle.Render(t.Name),
			dimStyle.Render(fmt.Sprintf("%d ms/frame, %d frames", t.UpdateRate, len(t.Frames)))))
		if minX, minY, maxX, maxY, ok := frameBounds(t.Frames); ok {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("bounds (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)))
		}
		for i, f := range t.Frames {
			lines = append(lines, fmt.Sprintf("%3d  x=%d y=%d w=%d h=%d", i, f.X, f.Y, f.W, f.H))
		}
		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func frameBounds(frames []spritecut.Frame) (minX, minY, maxX, maxY int, ok bool) {
	for _, f := range frames {
		n := f.Normalize()
		if !ok {
			minX, minY, maxX, maxY = n.X, n.Y, n.X+n.W, n.Y+n.H
			ok = true
			continue
		}
		minX = min(minX, n.X)
		minY = min(minY, n.Y)
		maxX = max(maxX, n.X+n.W)
		maxY = max(maxY, n.Y+n.H)
	}
	return
}
