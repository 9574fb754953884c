// Package app wires the buffer, renderer and terminal backend together and
// runs the synchronous read-eval-render loop: one key event, one buffer
// operation, one full render, until the quit key.
package app
