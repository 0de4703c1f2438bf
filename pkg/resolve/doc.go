// Package resolve merges defaults, command-line options and interactive
// answers into the final configuration of a scaffolding session.
//
// Precedence is per option: values given on the command line win over the
// defaults record, and both win over prompts. Once an option holds a value
// it is never asked again; prompt answers only fill options that are still
// missing. When the license resolves to "mit" and no author is known, one
// targeted author prompt runs after the merge. The merged record is
// normalized and decoded into Config.
package resolve
