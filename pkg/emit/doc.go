// Package emit persists exported content. FileEmitter writes files into an
// output directory; WriterEmitter streams to any writer, typically stdout.
package emit
