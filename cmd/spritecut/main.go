// Command spritecut is a sprite-sheet animation editor: load an image, draw
// frame rectangles into named tracks, preview them animated and export the
// result as JSON.
package main

func main() {
	Execute()
}
