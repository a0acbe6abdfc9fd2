// Package spritecut is a sprite-sheet animation editor for [Ebitengine].
//
// A user loads a single image, draws rectangular frame selections on the
// canvas, groups them into named tracks and previews the resulting
// frame-by-frame animation. The package owns the editor core: the track
// store, the viewport transform, the input state machine and the
// update/draw loop. Window setup, configuration and logging live in
// cmd/spritecut.
//
// # Quick start
//
// The simplest way to get started is [Run]:
//
//	editor := spritecut.NewEditor(spritecut.EditorOptions{ExportDir: "out"})
//	if err := editor.LoadImageFile("sheet.png"); err != nil {
//		log.Fatal(err)
//	}
//	spritecut.Run(editor, spritecut.RunConfig{
//		Title: "spritecut", Width: 1280, Height: 720,
//	})
//
// [Editor] implements [ebiten.Game], so it can also be passed straight to
// [ebiten.RunGame].
//
// # Editing
//
// Press N to create a track, then drag on the image to cut frames into the
// selected track. Hold Space while dragging to pan, scroll to zoom, and press
// Ctrl+Z to drop the last frame. Tab cycles the selection and Delete removes
// the selected track.
//
// # Playback
//
// P toggles playback. Each track rotates through its frames at its own
// update rate and the tracks are laid out side by side, 300 world units
// apart.
//
// # Export
//
// E writes the tracks as JSON to example.txt in the export directory, along
// with an overview image and one sprite strip per track. See [ExportJSON]
// for the document shape.
//
// [Ebitengine]: https://ebitengine.org
package spritecut
