package Trees

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the shape of the tree together with its values: for every node in
// pre-order, its value formatted with fmt, its level and its number of children. Two
// trees with equal fingerprints have, with overwhelming probability, the same values
// in the same places. The empty tree always has the same fingerprint.
// Time: O(n)
func (u *NTree[T]) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	u.PreOrder(func(n *Node[T]) bool {
		s := fmt.Sprint(n.v)
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(len(s)))
		buf = append(buf, s...)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.level))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(n.children)))
		_, _ = d.Write(buf)
		return true
	})
	return d.Sum64()
}
