package store_test

import "github.com/MKhiriev/julekalender/internal/config"

func storageConfig(stateFile string) config.Storage {
	return config.Storage{Files: config.Files{StateFile: stateFile}}
}
