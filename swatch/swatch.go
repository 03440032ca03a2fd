/*
Package swatch renders palettes as images and extracts palettes from them.

A swatch is 128 by 32 pixels, split into sixteen 16 by 16 blocks arranged
eight across and two down, one block per palette entry in order. Swatches
are written as paletted PNG images, or as raw Genesis tile data where each
8 by 8 tile is a 4-bit index for each pixel followed by the palette as
color RAM words.
*/
package swatch

import "github.com/bodgit/palconv/palette"

const (
	blockWidth  = 16
	blockHeight = blockWidth
	blockX      = 8
	blockY      = palette.Size / blockX
	pixelX      = blockWidth * blockX
	pixelY      = blockHeight * blockY

	tileWidth  = 8
	tileHeight = tileWidth
	tileX      = pixelX / tileWidth
	tileY      = pixelY / tileHeight
	tileBytes  = tileWidth * tileHeight >> 1

	// TileSize is the size in bytes of a swatch written by EncodeTiles
	TileSize = tileX*tileY*tileBytes + palette.Size*2
)
