package fixture

import "path/filepath"

// Method selects the external operation that materializes an artifact.
type Method string

const (
	// ProgramDump dumps a deployed program's executable bytes.
	ProgramDump Method = "program-dump"
	// AccountSnapshot captures an account's current on-chain state.
	AccountSnapshot Method = "account-snapshot"
)

// Artifact declares one file the validator needs: a stable on-chain
// identity, the file name it lands under, and how to fetch it.
type Artifact struct {
	Name    string
	Address string
	File    string
	Method  Method
}

// Path resolves the artifact's target location under the directory
// configured for its method.
func (a Artifact) Path(programsDir, accountsDir string) string {
	if a.Method == ProgramDump {
		return filepath.Join(programsDir, a.File)
	}
	return filepath.Join(accountsDir, a.File)
}

// DefaultTable is the canonical fixture set: the three programs the local
// validator must host and the two global configuration accounts they read.
// Order here is binding order on the validator command line.
func DefaultTable() []Artifact {
	return []Artifact{
		{
			Name:    "mpl-token-metadata",
			Address: "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s",
			File:    "mpl_token_metadata.so",
			Method:  ProgramDump,
		},
		{
			Name:    "pump",
			Address: "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P",
			File:    "pump.so",
			Method:  ProgramDump,
		},
		{
			Name:    "pump-amm",
			Address: "pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA",
			File:    "pump_amm.so",
			Method:  ProgramDump,
		},
		{
			Name:    "pump-global",
			Address: "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf",
			File:    "global.json",
			Method:  AccountSnapshot,
		},
		{
			Name:    "pump-amm-global-config",
			Address: "ADyA8hdefvWN2dbGGWFotbzWxrAvLW83WG6QCVXvJKqw",
			File:    "amm_global_config.json",
			Method:  AccountSnapshot,
		},
	}
}
