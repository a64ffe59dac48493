package census

// ApplySectorFilter augments each record with the sum over the requested
// sectors and drops records with no matching activity: a province with zero
// businesses in every requested sector contributes nothing and is excluded,
// not zero-valued. With no sectors requested the records pass through
// unchanged.
func ApplySectorFilter(records []SectorRecord, sectors []string) []SectorRecord {
	if len(sectors) == 0 {
		return records
	}

	filtered := make([]SectorRecord, 0, len(records))
	for _, r := range records {
		sum := 0
		for _, code := range sectors {
			sum += r.SectorValue(code)
		}
		if sum == 0 {
			continue
		}
		r.FilteredTotal = sum
		r.Filtered = true
		filtered = append(filtered, r)
	}
	return filtered
}
