package gateway

// DefaultLines is the placeholder list written when no configuration exists.
// The operator is expected to replace the addresses before the next run.
func DefaultLines() []string {
	return []string{
		"Viettel 192.168.1.1",
		"VNPT 192.168.1.2",
		"FPT 192.168.1.3",
		"CMC 192.168.1.4",
	}
}
