// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import "github.com/pdiddy/resume-screener/pkg/types"

// WriteRanked writes results as a JSON array to path.
func WriteRanked(path string, results []types.RankedResult) error {
	if results == nil {
		results = []types.RankedResult{}
	}
	return WriteJSON(path, results)
}

// ReadRanked reads a ranked results file written by WriteRanked.
func ReadRanked(path string) ([]types.RankedResult, error) {
	var results []types.RankedResult
	if err := ReadJSON(path, &results); err != nil {
		return nil, err
	}
	return results, nil
}
