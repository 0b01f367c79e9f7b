package seed

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"gorm.io/gorm"

	"team-site-backend/internal/models"
	"team-site-backend/internal/service"
	"team-site-backend/pkg/logger"
)

//go:embed data/branches/*.json
var defaultBranchesFS embed.FS

// EnsureDefaultBranches loads the embedded branch definitions and makes sure
// each exists. Seeding is idempotent; existing branches are left untouched,
// so the declared list behaves as static configuration.
func EnsureDefaultBranches(branchService *service.BranchService) {
	entries, err := fs.ReadDir(defaultBranchesFS, "data/branches")
	if err != nil {
		logger.Error(err, "Failed to read embedded branch definitions", nil)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		data, err := defaultBranchesFS.ReadFile(fmt.Sprintf("data/branches/%s", name))
		if err != nil {
			logger.Error(err, "Failed to read embedded branch file", map[string]interface{}{"file": name})
			continue
		}

		definitions, err := parseBranchDefinitions(data)
		if err != nil {
			logger.Error(err, "Failed to parse embedded branch file", map[string]interface{}{"file": name})
			continue
		}

		for _, definition := range definitions {
			ensureBranch(branchService, definition, name)
		}
	}
}

func ensureBranch(branchService *service.BranchService, definition models.CreateBranchRequest, source string) {
	if _, err := branchService.GetByName(definition.Name); err == nil {
		logger.Debug("Default branch already present", map[string]interface{}{"name": definition.Name, "source": source})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error(err, "Failed to verify default branch", map[string]interface{}{"name": definition.Name, "source": source})
		return
	}

	if _, err := branchService.Create(definition); err != nil {
		logger.Error(err, "Failed to create default branch", map[string]interface{}{"name": definition.Name, "source": source})
		return
	}

	logger.Info("Seeded default branch", map[string]interface{}{"name": definition.Name, "source": source})
}

func parseBranchDefinitions(data []byte) ([]models.CreateBranchRequest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var definitions []models.CreateBranchRequest
		if err := json.Unmarshal(trimmed, &definitions); err != nil {
			return nil, err
		}
		return definitions, nil
	}

	var definition models.CreateBranchRequest
	if err := json.Unmarshal(trimmed, &definition); err != nil {
		return nil, err
	}
	return []models.CreateBranchRequest{definition}, nil
}
