// Package grouping derives the resource-type/operation hierarchy rendered
// in each namespace document.
//
// A command string like "storage account create" splits into the namespace
// ("storage"), the resource type ("Account", the title-cased second token)
// and the operation phrase ("Create", the remaining tokens as a natural
// phrase). Multi-level sub-resources that should not group under their
// literal second token (e.g. "storage blob container get" documenting the
// Container resource) are handled through the configurable override table in
// the run configuration rather than hard-coded special cases.
//
// Parameter lists are filtered against the configured common-parameter set;
// a parameter the tool explicitly marks required always survives filtering.
// Groups and the operations inside them are sorted alphabetically, ordinal
// case-insensitive. That ordering is part of the rendering contract.
package grouping
