package bucketset

import "github.com/riftcore/alucore/internal/alufault"

var (
	errZeroValue   = alufault.CorruptBucket("zero is not a storable id")
	errCorruptTail = alufault.CorruptBucket("erase found no occupied tail slot")
	errEraseAbsent = alufault.CorruptBucket("erase of a value not present in the set")
)
