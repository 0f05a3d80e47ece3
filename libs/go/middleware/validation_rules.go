package middleware

const stakingBodyLimit = 4 * 1024

var maxRecoveryID = uint64(28)

// StakeValidation covers the self-service stake body.
var StakeValidation = ValidationConfig{
	MaxBodySize: stakingBodyLimit,
	Rules: []ValidationRule{
		{Field: "amount", Type: TypeAmount, Required: true},
	},
}

// StakeForAccountValidation covers delegated stake bodies, both synchronous
// and queued. Whether the signature arrived whole or as components is left
// to the handler.
var StakeForAccountValidation = ValidationConfig{
	MaxBodySize: stakingBodyLimit,
	Rules: []ValidationRule{
		{Field: "account", Type: TypeAddress, Required: true},
		{Field: "amount", Type: TypeAmount, Required: true},
		{Field: "deadline", Type: TypeUint, Required: true},
		{Field: "signature", Type: TypeHex, HexBytes: 65},
		{Field: "v", Type: TypeUint, Max: &maxRecoveryID},
		{Field: "r", Type: TypeHex, HexBytes: 32},
		{Field: "s", Type: TypeHex, HexBytes: 32},
	},
}

// SetSwapValidation covers the admin swap toggle.
var SetSwapValidation = ValidationConfig{
	MaxBodySize: stakingBodyLimit,
	Rules: []ValidationRule{
		{Field: "enabled", Type: TypeBool, Required: true},
	},
}

// FundValidation covers the local faucet.
var FundValidation = ValidationConfig{
	MaxBodySize: stakingBodyLimit,
	Rules: []ValidationRule{
		{Field: "account", Type: TypeAddress, Required: true},
		{Field: "amount", Type: TypeAmount, Required: true},
	},
}

// ChallengeValidation covers sign-in challenge requests.
var ChallengeValidation = ValidationConfig{
	MaxBodySize: stakingBodyLimit,
	Rules: []ValidationRule{
		{Field: "account", Type: TypeAddress, Required: true},
	},
}

// SessionValidation covers signed challenge answers.
var SessionValidation = ValidationConfig{
	MaxBodySize: stakingBodyLimit,
	Rules: []ValidationRule{
		{Field: "nonce", Type: TypeString, Required: true},
		{Field: "signature", Type: TypeHex, HexBytes: 65, Required: true},
	},
}
