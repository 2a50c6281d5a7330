// Command memctl exercises the rawmem primitives from the command line: it allocates
// buffers through a chosen backend, runs range transfers and fills, and reports the
// resulting values and allocator accounting.
package main

func main() {
	execute()
}
