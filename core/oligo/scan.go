// core/oligo/scan.go
package oligo

import "strings"

/*
Aho–Corasick multi-motif scanner.

- NewScanner(motifs) builds a trie with failure links over the lower-cased motifs.
- Scan(seq) reports the start offset of every motif occurrence in one pass.
*/

// node is one state in the automaton.
type node struct {
	next [256]int // 0 => absent (root is state 0)
	fail int
	out  []int // motif indexes that end at this state
}

// Scanner finds several motifs at once, case-insensitively.
type Scanner struct {
	motifs []string
	nodes  []node
}

// NewScanner constructs the automaton for motifs. Empty motifs never match.
func NewScanner(motifs ...string) *Scanner {
	s := &Scanner{motifs: make([]string, len(motifs)), nodes: make([]node, 1)} // state 0 = root

	// 1) Build trie edges
	for i, m := range motifs {
		m = strings.ToLower(m)
		s.motifs[i] = m
		if m == "" {
			continue
		}
		cur := 0
		for j := 0; j < len(m); j++ {
			b := m[j]
			if s.nodes[cur].next[b] == 0 {
				s.nodes = append(s.nodes, node{})
				s.nodes[cur].next[b] = len(s.nodes) - 1
			}
			cur = s.nodes[cur].next[b]
		}
		s.nodes[cur].out = append(s.nodes[cur].out, i)
	}

	// 2) BFS to set fail links and propagate outputs
	queue := make([]int, 0, len(s.nodes))
	for c := 0; c < 256; c++ {
		if child := s.nodes[0].next[c]; child != 0 {
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < 256; c++ {
			t := s.nodes[r].next[c]
			if t == 0 {
				continue
			}
			queue = append(queue, t)
			f := s.nodes[r].fail
			for f > 0 && s.nodes[f].next[c] == 0 {
				f = s.nodes[f].fail
			}
			if s.nodes[f].next[c] != 0 {
				f = s.nodes[f].next[c]
			}
			s.nodes[t].fail = f
			if len(s.nodes[f].out) > 0 {
				s.nodes[t].out = append(s.nodes[t].out, s.nodes[f].out...)
			}
		}
	}
	return s
}

// Scan returns, per motif (in NewScanner order), the ascending start offsets
// of its occurrences in seq, overlaps included.
func (s *Scanner) Scan(seq string) [][]int {
	out := make([][]int, len(s.motifs))
	state := 0
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		for state > 0 && s.nodes[state].next[b] == 0 {
			state = s.nodes[state].fail
		}
		if next := s.nodes[state].next[b]; next != 0 {
			state = next
		}
		for _, idx := range s.nodes[state].out {
			out[idx] = append(out[idx], i-len(s.motifs[idx])+1)
		}
	}
	return out
}
