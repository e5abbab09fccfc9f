package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/samcase/internal/classify"
)

// Format renders a ResolvedCase as a deterministic, human-readable dump:
// the three partitions, the producer and consumer maps, and the plan in
// evaluation order. It has no output side effect; the caller decides where
// the text goes. The exact layout is an internal contract, stable enough
// for diffable test fixtures but with no external consumers.
func Format(rc *ResolvedCase) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "config '%s' {\n", rc.Config)
	fmt.Fprintf(&sb, "\tprimary_inputs: %s\n", tuple(rc.Info.PrimaryInputs))
	fmt.Fprintf(&sb, "\tsecondary_inputs: %s\n", tuple(rc.Info.SecondaryInputs))
	fmt.Fprintf(&sb, "\tevaluated_inputs: %s\n", tuple(rc.Info.EvaluatedInputs))

	sb.WriteString("\tproducers: {\n")
	for _, p := range producerLines(rc.Info) {
		fmt.Fprintf(&sb, "\t\t%s\n", p)
	}
	sb.WriteString("\t}\n")

	sb.WriteString("\tconsumers: {\n")
	for _, c := range consumerLines(rc.Info) {
		fmt.Fprintf(&sb, "\t\t%s\n", c)
	}
	sb.WriteString("\t}\n")

	plan := make([]string, len(rc.Plan))
	for i, id := range rc.Plan {
		plan[i] = string(id)
	}
	fmt.Fprintf(&sb, "\tplan: %s\n", tuple(plan))
	sb.WriteString("}\n")
	return sb.String()
}

// tuple renders names as ('a', 'b'), matching the legacy debug dumps.
func tuple(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// producerLines renders one "'producer': (outputs...)" line per producer,
// in plan-independent declaration order.
func producerLines(info *classify.CaseVariableInfo) []string {
	outputs := make(map[classify.ProducerID][]string)
	for _, e := range info.ProducerEdges {
		outputs[e.Producer] = append(outputs[e.Producer], e.Variable)
	}
	lines := make([]string, 0, len(info.Producers))
	for _, id := range info.Producers {
		lines = append(lines, fmt.Sprintf("'%s': %s", id, tuple(outputs[id])))
	}
	return lines
}

// consumerLines renders one "'variable': (consumers...)" line per consumed
// variable, name-sorted.
func consumerLines(info *classify.CaseVariableInfo) []string {
	consumers := make(map[string][]string)
	for _, e := range info.ConsumerEdges {
		consumers[e.Variable] = append(consumers[e.Variable], string(e.Consumer))
	}
	vars := make([]string, 0, len(consumers))
	for v := range consumers {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, fmt.Sprintf("'%s': %s", v, tuple(consumers[v])))
	}
	return lines
}
