// Command tcplay unlocks TrueCrypt-format volumes from the command
// line: `info` reports the recognized key-derivation and cipher
// combination without touching the kernel; `map` additionally installs
// a device-mapper crypt target.
package main

func main() {
	Execute()
}
