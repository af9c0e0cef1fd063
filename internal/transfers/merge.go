package transfers

// FilterAndJoinTransfers combines the transfers of the three ledgers into a
// single ordered list of notifiable transfers.
//
// A transaction hash reported by both the gold and the stable ledger is an
// exchange settlement (a swap between the reserve asset and a stable asset)
// and contributes no transfer at all. A hash reported by only one of them is
// a regular payment and is kept. Native transfers are never filtered.
//
// The result holds the native transfers first, then the retained gold
// transfers, then the retained stable transfers, each in its source order.
func FilterAndJoinTransfers(gold, native, stable TransferSet) []Transfer {
	joined := native.All()

	for _, hash := range gold.Hashes() {
		if stable.Has(hash) {
			continue
		}
		joined = append(joined, gold.Get(hash)...)
	}

	for _, hash := range stable.Hashes() {
		if gold.Has(hash) {
			continue
		}
		joined = append(joined, stable.Get(hash)...)
	}

	return joined
}
