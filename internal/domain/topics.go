package domain

// topicCatalog is the fixed list of C++ subject areas offered for
// question generation.
var topicCatalog = []string{
	"Pointers & References",
	"Memory Management",
	"Smart Pointers",
	"Templates",
	"STL Containers",
	"Lambdas",
	"Move Semantics",
	"RAII",
	"Operator Overloading",
	"Virtual Functions & Polymorphism",
	"Const Correctness",
	"Undefined Behavior",
}

// TopicCatalog returns a copy of the full topic catalog.
func TopicCatalog() []string {
	topics := make([]string, len(topicCatalog))
	copy(topics, topicCatalog)
	return topics
}
