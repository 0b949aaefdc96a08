package board

import (
	"math/bits"
	"math/rand"
)

// placementKeys[team][piece type][square]
var placementKeys [2][7][64]uint64

func init() {
	// Fixed seed so hashes are reproducible across runs
	rnd := rand.New(rand.NewSource(0xC0DE))
	for team := range placementKeys {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				placementKeys[team][pt][sq] = rnd.Uint64()
			}
		}
	}
}

// PlacementHash hashes the piece placement only. Side to move, castling
// rights and the en passant target are not part of the key.
func (p *Position) PlacementHash() uint64 {
	var key uint64
	for team := White; team <= Black; team++ {
		bb := p.bitboards(team)
		for pt := Pawn; pt <= King; pt++ {
			for x := pieceBitboard(bb, pt); x != 0; x &= x - 1 {
				key ^= placementKeys[team][pt][bits.TrailingZeros64(x)]
			}
		}
	}
	return key
}
