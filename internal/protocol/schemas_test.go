package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	helloSchema := compile("hello.schema.json")
	welcomeSchema := compile("welcome.schema.json")
	snapshotSchema := compile("snapshot.schema.json")
	commandSchema := compile("command.schema.json")
	resultSchema := compile("result.schema.json")

	var hello any
	_ = json.Unmarshal([]byte(`{
	  "type":"HELLO",
	  "protocol_version":"1.0",
	  "agent_name":"AIBot",
	  "capabilities":{"retarget":true,"cancel_ack":true,"max_in_flight":1}
	}`), &hello)
	validate(helloSchema, hello)

	var welcome any
	_ = json.Unmarshal([]byte(`{
	  "type":"WELCOME",
	  "protocol_version":"1.0",
	  "agent_id":"A1",
	  "server_params":{"tick_rate_hz":20,"version":"1.21","gamemode":"survival"},
	  "server_capabilities":{"retarget":true,"cancel_ack":true}
	}`), &welcome)
	validate(welcomeSchema, welcome)

	var snapshot any
	_ = json.Unmarshal([]byte(`{
	  "type":"SNAPSHOT",
	  "protocol_version":"1.0",
	  "tick":42,
	  "agent_id":"A1",
	  "self":{"health":18,"food":15,"pos":[10.5,64,-3.2],"dimension":"overworld","armor":["chest"]},
	  "world":{"time_of_day":"night","weather":"rain"},
	  "entities":[{"id":"E1","kind":"zombie","distance":6.1,"hostile":true}],
	  "blocks":[{"kind":"iron_ore","distance":4.0,"pos":[11,60,-3]}],
	  "players":[{"name":"Alex","distance":12.0}],
	  "inventory":[{"item":"bread","count":3}],
	  "milestones":["has_wood"]
	}`), &snapshot)
	validate(snapshotSchema, snapshot)

	var command any
	_ = json.Unmarshal([]byte(`{
	  "type":"COMMAND",
	  "protocol_version":"1.0",
	  "tick":42,
	  "agent_id":"A1",
	  "dispatch":[{"id":"C_ab12cd34","kind":"attack","params":{"target_id":"E1"},"reason":"attack zombie at 6.1"}],
	  "cancel":["C_00ff11ee"]
	}`), &command)
	validate(commandSchema, command)

	var result any
	_ = json.Unmarshal([]byte(`{
	  "type":"RESULT",
	  "protocol_version":"1.0",
	  "command_id":"C_ab12cd34",
	  "status":"CANCELLED",
	  "tick":43
	}`), &result)
	validate(resultSchema, result)
}

func TestSchemas_RejectBadKind(t *testing.T) {
	p := filepath.Join("..", "..", "schemas", "command.schema.json")
	s, err := jsonschema.Compile(p)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var bad any
	_ = json.Unmarshal([]byte(`{
	  "type":"COMMAND",
	  "protocol_version":"1.0",
	  "agent_id":"A1",
	  "dispatch":[{"id":"C_1","kind":"dance"}]
	}`), &bad)
	if err := s.Validate(bad); err == nil {
		t.Fatalf("expected unknown kind rejected by schema")
	}
}
