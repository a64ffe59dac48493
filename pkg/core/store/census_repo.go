package store

import (
	"context"
	"encoding/json"
	"fmt"

	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
)

// CensusRepo reads denormalized census rows.
//
// Schema assumption (managed outside this service):
//
//	CREATE TABLE IF NOT EXISTS census_records (
//	  provinsi      TEXT PRIMARY KEY,
//	  kode_provinsi TEXT,
//	  sektor        JSONB,
//	  total         BIGINT
//	);
//
// The sektor blob carries both legacy shapes: a sector code mapped to a bare
// number or to a nested {"jumlah": N} object. Normalization happens here so
// nothing downstream sees the polymorphism.
type CensusRepo struct{}

func NewCensusRepo() *CensusRepo {
	return &CensusRepo{}
}

// Fetch returns the records matching the intent's province filter, with
// sector-filtered totals applied. A backend error is logged and surfaced as
// an empty list; the orchestrator's fallback tiers take it from there.
func (r *CensusRepo) Fetch(ctx context.Context, it intent.Intent) []census.SectorRecord {
	records, err := r.query(ctx, it.Provinces)
	if err != nil {
		fmt.Printf("[WARNING] census fetch failed: %v\n", err)
		return nil
	}
	return census.ApplySectorFilter(records, it.Sectors)
}

func (r *CensusRepo) query(ctx context.Context, provinces []string) ([]census.SectorRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT provinsi, kode_provinsi, sektor, total FROM census_records`
	args := []interface{}{}
	if len(provinces) > 0 {
		query += ` WHERE provinsi = ANY($1)`
		args = append(args, provinces)
	}
	query += ` ORDER BY provinsi`

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query census records: %w", err)
	}
	defer rows.Close()

	var records []census.SectorRecord
	for rows.Next() {
		var (
			rec        census.SectorRecord
			sectorJSON []byte
		)
		if err := rows.Scan(&rec.Province, &rec.ProvinceCode, &sectorJSON, &rec.Total); err != nil {
			return nil, fmt.Errorf("failed to scan census record: %w", err)
		}
		rec.Sectors = decodeSectors(sectorJSON)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("census record iteration failed: %w", err)
	}
	return records, nil
}

// decodeSectors normalizes the raw JSONB blob into code -> count. Malformed
// blobs yield an empty map rather than an error; a record with unreadable
// sector data still ranks by its precomputed total.
func decodeSectors(raw []byte) map[string]int {
	sectors := make(map[string]int)
	if len(raw) == 0 {
		return sectors
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		fmt.Printf("[WARNING] malformed sector blob skipped: %v\n", err)
		return sectors
	}
	for code, value := range generic {
		sectors[code] = census.NormalizeValue(value)
	}
	return sectors
}
