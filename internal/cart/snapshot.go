package cart

import "encoding/json"

// The snapshot format is a plain JSON array of lines so any key-value store
// can hold it, matching what the mobile client keeps in device storage.

func (s *Store) Snapshot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(s.lines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Restore replaces the cart contents with a previously taken snapshot.
// Used once per session, before any mutation.
func (s *Store) Restore(snapshot string) error {
	var lines []Line
	if err := json.Unmarshal([]byte(snapshot), &lines); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	return nil
}
