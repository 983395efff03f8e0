package main

import (
	"fmt"
	"strings"

	"github.com/osse101/HonorBot_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (env + db)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		PrintError("Environment check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Environment OK")
	}
	for _, w := range warnings {
		PrintWarning("%s", w)
	}

	if strings.ToLower(getEnv("STORE_DRIVER", config.DefaultStoreDriver)) == config.StoreDriverPostgres {
		if err := pingOnce(dbConnString()); err != nil {
			PrintError("Database check failed: %v", err)
			hasError = true
		} else {
			PrintSuccess("Database OK")
		}
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
