// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Branch name validation against git ref naming rules
//   - Terminal interactivity detection
package utils
