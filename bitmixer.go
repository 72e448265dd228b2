package cerny

// mix MurmurHash3 32-bit finalization step. Used to spread state indices before they are
// summed into an order independent set hash.
func mix(key int) int {
	k := uint32(key)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
