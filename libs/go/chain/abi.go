package chain

// RouterABI is the subset of the AmpedStakingRouter interface the relay uses.
const RouterABI = `[
  {"type":"function","name":"nonces","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getStakeDigest","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"},{"name":"amount","type":"uint256"},{"name":"deadline","type":"uint256"}],
   "outputs":[{"name":"","type":"bytes32"}]},
  {"type":"function","name":"stakeAmpedForAccount","stateMutability":"nonpayable",
   "inputs":[{"name":"account","type":"address"},{"name":"amount","type":"uint256"},{"name":"deadline","type":"uint256"},
             {"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"stakeAmped","stateMutability":"nonpayable",
   "inputs":[{"name":"amount","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]}
]`
