package spell

import (
	"encoding/json"
	"fmt"
	"io"
)

// ParseViewModel decodes a JSON view-model snapshot. Unknown object keys are
// ignored so hosts can carry extra item data in the same document.
func ParseViewModel(data []byte) (ViewModel, error) {
	var vm ViewModel
	if err := json.Unmarshal(data, &vm); err != nil {
		return ViewModel{}, fmt.Errorf("spell: parse view model: %w", err)
	}
	return vm, nil
}

// ReadViewModel decodes a JSON view-model snapshot from a reader.
func ReadViewModel(r io.Reader) (ViewModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ViewModel{}, fmt.Errorf("spell: read view model: %w", err)
	}
	return ParseViewModel(data)
}
