// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	// Make sure the photo directory exists
//	err := ioutils.EnsureDir("images")
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "images/photo.png", data)
//
// # Image Processing
//
// The ImageService shrinks player photos when resizing is enabled:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(ctx, imageData, 256, 256)
package ioutils
