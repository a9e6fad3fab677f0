package field_test

import "os"

// writeTestFile drops fixture content for Load tests.
func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
