package protocol

import "github.com/invopop/jsonschema"

// Schema reflects the wire message record into a JSON schema. It exists so
// the contract can be pinned in tests and exported to collaborating services
// without hand-maintaining a schema document.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
		ExpandedStruct: true,
	}
	return reflector.Reflect(&Message{})
}
