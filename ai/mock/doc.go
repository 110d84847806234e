// Package mock provides test doubles for the ai collaborator contracts.
// Behavior is injected through function fields; defaults are deterministic.
package mock
