package model

// Program identifiers for each module. They are fixed at build time and only
// used to tag logs and responses.
const (
	RegistryProgramID = "St4teModu13D3mo1111111111111111111111111111111111"
	CombatProgramID   = "BehAv10rM0Du13D3m0111111111111111111111111111111"
	AssetProgramID    = "Fg6PaFpoGXkYsidMpWxTWqoz1Rz4hG98bXok8eXEiN7z"
)
