package janggi

// IsLegalMove is the pure movement predicate for the occupant of from: shape,
// blocking and friendly-destination rules only. It ignores self-check.
func (b *Board) IsLegalMove(from, to Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	pc, ok := b.At(from)
	if !ok {
		return false
	}
	if dst, ok := b.At(to); ok && dst.Color == pc.Color {
		return false
	}
	switch pc.Kind {
	case KindGeneral, KindGuard:
		return legalPalaceStep(pc.Color, from, to)
	case KindElephant:
		return b.legalLeap(elephantLegs[:], from, to)
	case KindHorse:
		return b.legalLeap(horseLegs[:], from, to)
	case KindChariot:
		return b.legalChariot(from, to)
	case KindCannon:
		return b.legalCannon(from, to)
	case KindSoldier:
		return legalSoldier(pc.Color, from, to)
	}
	return false
}

// MovePath returns the squares strictly between from and to that the occupant
// of from passes through, in travel order. Atomic moves and shapes the piece
// cannot make return nil.
func (b *Board) MovePath(from, to Square) []Square {
	pc, ok := b.At(from)
	if !ok || !to.Valid() || from == to {
		return nil
	}
	switch pc.Kind {
	case KindElephant:
		path, _ := leapPath(elephantLegs[:], from, to)
		return path
	case KindHorse:
		path, _ := leapPath(horseLegs[:], from, to)
		return path
	case KindChariot, KindCannon:
		path, _ := slidePath(from, to)
		return path
	}
	return nil
}

func (b *Board) pathClear(path []Square) bool {
	for _, sq := range path {
		if b.occupied(sq) {
			return false
		}
	}
	return true
}
