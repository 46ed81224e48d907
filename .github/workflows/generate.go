package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type PushTrigger struct {
	Branches []string `yaml:"branches,omitempty"`
}

type Trigger struct {
	Push PushTrigger `yaml:"push,omitempty"`
}

type Args map[string]interface{}

type Step struct {
	Name string `yaml:"name,omitempty"`
	Uses string `yaml:"uses,omitempty"`
	Run  string `yaml:"run,omitempty"`
	With Args   `yaml:"with,omitempty"`
}

type Job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

type Workflow struct {
	Name string  `yaml:"name"`
	On   Trigger `yaml:"on,omitempty"`
	Jobs map[string]Job
}

func WorkflowTest() Workflow {
	return Workflow{
		Name: "test",
		On: Trigger{
			Push: PushTrigger{Branches: []string{"*"}},
		},
		Jobs: map[string]Job{"test": JobTest()},
	}
}

func JobTest() Job {
	return Job{
		RunsOn: "ubuntu-latest",
		Steps: []Step{{
			Name: "Checkout",
			Uses: "actions/checkout@v2",
		}, {
			Name: "Set up Go",
			Uses: "actions/setup-go@v2",
			With: Args{"go-version": "1.23"},
		}, {
			Name: "Test",
			Run:  "go test ./...",
		}},
	}
}

func MarshalToWriter(w io.Writer, v interface{}) error {
	yamlEncoder := yaml.NewEncoder(w)
	yamlEncoder.SetIndent(2) // this is what you're looking for
	if err := yamlEncoder.Encode(v); err != nil {
		return fmt.Errorf("marshaling to YAML: %w", err)
	}
	return nil
}

func main() {
	if err := MarshalToWriter(os.Stdout, WorkflowTest()); err != nil {
		log.Fatalf("marshaling test workflow: %v", err)
	}
}
