// meta/meta.go
package meta

// NUM_PLAYERS defines the default number of players at the table.
const NUM_PLAYERS = 4

// ROUNDS defines the default number of rounds per experiment.
const ROUNDS = 30

// TEMPERATURE defines the default softmax policy temperature.
const TEMPERATURE = 1.0

// SEED defines the default random seed for reproducible rounds.
const SEED = 1
