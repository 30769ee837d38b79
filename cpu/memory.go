package cpu

// Memory is the flat 64 KiB address space. Addresses are uint16, so all
// address arithmetic wraps modulo MEM_SIZE by construction.
type Memory [MEM_SIZE]uint8

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint16) uint8 {
	return mem[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr uint16, value uint8) {
	mem[addr] = value
}

// ReadWord returns the 16-bit little-endian word at addr. A word starting
// at 0xFFFF wraps to address 0 for its high byte.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	return uint16(mem[addr]) | (uint16(mem[addr+1]) << 8)
}

// WriteWord stores a 16-bit word at addr, little-endian, wrapping as
// ReadWord does.
func (mem *Memory) WriteWord(addr uint16, value uint16) {
	mem[addr] = uint8(value)
	mem[addr+1] = uint8(value >> 8)
}
