/*
 * nwchem.go, part of qcin.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * qcin is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package qm

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/qcin"
	"github.com/rmera/qcin/basis"
)

// NWChemHandle generates NWChem input files. The zero value works; the
// basis database is optional and generation degrades gracefully without
// it.
type NWChemHandle struct {
	inputname string
	db        basis.DB
}

func NewNWChemHandle() *NWChemHandle {
	return new(NWChemHandle)
}

// SetName sets the job name, used for the input file and any side files.
// It overrides the name carried by the calculation.
func (O *NWChemHandle) SetName(name string) {
	O.inputname = name
}

// SetDB sets the basis-set database queried for custom per-element basis
// sets and their effective core potentials.
func (O *NWChemHandle) SetDB(db basis.DB) {
	O.db = db
}

// The task keywords for each kind of calculation. A kind can need several
// sequential run directives.
var nwchemKeywords = map[qcin.CalcType][]string{
	qcin.OPT:       {"optimize"},
	qcin.ConstrOPT: {"optimize"},
	qcin.TS:        {"saddle"},
	qcin.Freq:      {"freq"},
	qcin.NMR:       {"property"},
	qcin.SP:        {"energy"},
	qcin.OptFreq:   {"optimize", "freq"},
	qcin.MEP:       {"neb ignore"},
}

// NWChem wants the multiplicity of an scf block spelled out.
var nwchemMultiplicity = map[int]string{
	1: "singlet",
	2: "doublet",
	3: "triplet",
	4: "quartet",
	5: "quintet",
	6: "sextet",
	7: "septet",
	8: "octet",
}

// The specification keywords that mean "use the freezing-string method
// for the minimum-energy path" instead of the default nudged elastic
// band.
var stringMethodSynonyms = []string{
	"string",
	"freezing string method",
	"fsm",
	"freezing string",
}

// One nwchemRun holds the state of a single generation run: the local
// normalized copies of the request fields, every routing decision, and
// the blocks rendered from them. Nothing here outlives the run and no two
// runs share state.
type nwchemRun struct {
	Q      *qcin.Calculation
	name   string
	theory string //engine block name: scf, dft, mp2 or ccsd
	method string
	mem    string

	//routing decisions, collected before any block is rendered
	stringMethod bool //the reaction-path variant flag
	methodSpecs  []string
	calcSpecs    []string
	freqSpecs    []string //nested freq sub-block of an opt+freq run
	solSpecs     []string //belong right after the cosmo header
	loose        []string //bare directives for the ancillary block

	//rendered state
	tasks       []string
	methodBlock *block
	calcBlock   *block
	ancillary   *block
	tail        []string //self-closed sub-blocks after the ancillary block
	basisBlock  string
	xyz         string

	warnings  []qcin.Warning
	artifacts []Artifact
}

func (r *nwchemRun) warn(format string, a ...interface{}) {
	r.warnings = append(r.warnings, qcin.Warnf(format, a...))
}

// GenerateInput builds the NWChem input document for Q. It returns the
// document together with any side artifacts and non-fatal warnings, or an
// error and no document at all. Q itself is never modified; the few
// NWChem-specific renamings (mean-field blocks are "scf", coupled-cluster
// blocks are "ccsd", memory gets its unit suffix) happen on local copies.
func (O *NWChemHandle) GenerateInput(Q *qcin.Calculation) (*Result, error) {
	if Q == nil {
		return nil, fmt.Errorf("%w: no calculation given", qcin.ErrMissingParameter)
	}
	r := &nwchemRun{Q: Q, name: O.inputname}
	if r.name == "" {
		r.name = Q.Name
	}
	if r.name == "" {
		r.name = "qcin"
	}
	r.mem = fmt.Sprintf("%d mb", Q.Mem)
	r.method = qcin.GetMethod(Q.Parameters.Method, "nwchem")
	r.theory = strings.ToLower(Q.Parameters.TheoryLevel)
	lmethod := strings.ToLower(Q.Parameters.Method)
	if r.theory == qcin.HF || lmethod == "uhf" || lmethod == "rhf" {
		r.theory = "scf" //the mean-field block is called scf in NWChem
	} else if r.theory == qcin.CC {
		r.theory = "ccsd" //and any coupled-cluster block is called ccsd
	}
	if _, ok := nwchemKeywords[Q.Type]; !ok {
		return nil, fmt.Errorf("%w: NWChem does not support calculations of type %v", qcin.ErrUnsupportedCalculation, Q.Type)
	}

	//Phase one: collect every routing decision. Nothing is rendered yet,
	//so a decision made here (like the string-method flag) never has to
	//patch text written earlier.
	if err := r.routeSpecifications(); err != nil {
		return nil, err
	}

	//Phase two: render every block exactly once from the finished
	//decisions.
	r.deriveTasks()
	if err := r.buildMethodBlock(); err != nil {
		return nil, err
	}
	r.buildCalculationBlock()
	if err := r.buildAncillary(); err != nil {
		return nil, err
	}
	if err := r.buildConstraints(); err != nil {
		return nil, err
	}
	if err := r.handleXYZ(); err != nil {
		return nil, err
	}
	if err := O.resolveBasis(r); err != nil {
		return nil, err
	}
	r.closeBlocks()
	return &Result{Input: r.assemble(), Artifacts: r.artifacts, Warnings: r.warnings}, nil
}

// BuildInput generates the input for Q and writes it to {name}.nw in the
// working directory, along with any side artifacts under their own names.
// Warnings go to stderr on top of being part of the generation result.
func (O *NWChemHandle) BuildInput(Q *qcin.Calculation) error {
	res, err := O.GenerateInput(Q)
	if err != nil {
		return err
	}
	name := O.inputname
	if name == "" && Q != nil {
		name = Q.Name
	}
	if name == "" {
		name = "qcin"
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "%s\n", w)
	}
	if err := os.WriteFile(fmt.Sprintf("%s.nw", name), []byte(res.Input), 0644); err != nil {
		return err
	}
	for _, a := range res.Artifacts {
		if err := os.WriteFile(a.Name, []byte(a.Content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// Everything outside this set is stripped from specification statements
// before they can reach the generated document.
const specWhitelist = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ/()=-,._ "

func cleanSpec(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(specWhitelist, r) {
			return r
		}
		return -1
	}, s)
}

// A parenthesized specification statement: blockname(argument). The name
// is everything up to the last opening parenthesis.
var specToken = regexp.MustCompile(`^(.+)\((.*)\)$`)

// routeSpecifications parses the free-form specification string and
// dispatches each statement to exactly one destination: the method block,
// the calculation block, the ancillary block, the solvation sub-block, or
// the string-method flag. Statements that fit nowhere for this kind of
// calculation are dropped from the document but reported as warnings,
// never silently.
func (r *nwchemRun) routeSpecifications() error {
	for _, stmt := range strings.Split(r.Q.Parameters.Specifications, ";") {
		stmt = strings.TrimSpace(cleanSpec(strings.ToLower(strings.TrimSpace(stmt))))
		if stmt == "" {
			continue
		}
		m := specToken.FindStringSubmatch(stmt)
		if m == nil {
			if isInString(stringMethodSynonyms, stmt) {
				r.stringMethod = true
			} else {
				r.loose = append(r.loose, stmt)
			}
			continue
		}
		name := strings.TrimSpace(m[1])
		arg := strings.TrimSpace(m[2])
		t := r.Q.Type
		switch {
		case name == "scf" || name == "dft" || name == "hf":
			r.methodSpecs = append(r.methodSpecs, arg)
		case (name == "opt" || name == "ts") &&
			(t == qcin.OPT || t == qcin.ConstrOPT || t == qcin.TS || t == qcin.OptFreq):
			r.calcSpecs = append(r.calcSpecs, arg)
		case name == "nmr" && t == qcin.NMR:
			r.calcSpecs = append(r.calcSpecs, arg)
		case name == "freq" && t == qcin.Freq:
			r.calcSpecs = append(r.calcSpecs, arg)
		case name == "freq" && t == qcin.OptFreq:
			//kept apart so it cannot collide with the driver block of
			//the optimization; rendered later as a nested freq sub-block
			r.freqSpecs = append(r.freqSpecs, arg)
		case isInString([]string{"neb", "string", "fsm"}, name) && t == qcin.MEP:
			r.calcSpecs = append(r.calcSpecs, arg)
		case name == "sol" || name == "cosmo" || name == "smd":
			r.solSpecs = append(r.solSpecs, arg)
		case name == "mp2" && r.theory == "mp2":
			r.methodSpecs = append(r.methodSpecs, arg)
		case name == "cc" && r.theory == "ccsd":
			r.methodSpecs = append(r.methodSpecs, arg)
		default:
			r.warn("specification '%s' does not apply to this calculation and was ignored", stmt)
		}
	}
	return nil
}

// deriveTasks writes one task line per run directive of the calculation
// kind. Coupled-cluster tasks name the method (ccsd, ccsd(t)); everything
// else names the theory block. The string-method flag swaps the default
// reaction-path keyword before anything is written.
func (r *nwchemRun) deriveTasks() {
	kw := r.theory
	if r.theory == "ccsd" {
		kw = r.method
	}
	for _, word := range nwchemKeywords[r.Q.Type] {
		if r.stringMethod {
			word = strings.ReplaceAll(word, "neb", "string")
		}
		r.tasks = append(r.tasks, fmt.Sprintf("task %s %s", kw, word))
	}
}

// buildMethodBlock seeds the method block with the theory-level preamble
// and appends whatever specifications were routed to it. Mean-field
// blocks get the method (unless it is plain hf) and the spelled-out
// multiplicity; DFT blocks get the functional, the multiplicity and the
// dispersion correction; post-mean-field blocks get nothing extra, and do
// not even exist unless a specification joins them.
func (r *nwchemRun) buildMethodBlock() error {
	switch r.theory {
	case "scf":
		r.methodBlock = &block{header: "scf"}
		if r.method != "" && r.method != "hf" {
			r.methodBlock.add(r.method)
		}
		mult, ok := nwchemMultiplicity[r.Q.Multiplicity]
		if !ok {
			return fmt.Errorf("%w: multiplicity %d has no NWChem keyword", qcin.ErrInvalidParameter, r.Q.Multiplicity)
		}
		r.methodBlock.add(mult)
	case "dft":
		r.methodBlock = &block{header: "dft"}
		r.methodBlock.add("xc "+r.method, fmt.Sprintf("mult %d", r.Q.Multiplicity))
		if r.Q.Parameters.D3 {
			r.methodBlock.add("disp vdw 3")
		} else if r.Q.Parameters.D3BJ {
			r.methodBlock.add("disp vdw 4")
		}
	case "mp2", "ccsd":
		if len(r.methodSpecs) > 0 {
			r.methodBlock = &block{header: r.theory}
		}
	default:
		if r.theory != "" {
			r.methodBlock = &block{header: r.theory}
		}
	}
	if r.methodBlock != nil {
		r.methodBlock.add(r.methodSpecs...)
	}
	return nil
}

// buildCalculationBlock renders the calculation-type block: the property
// directive of a nuclear-shielding run, then the routed specifications
// under their lazy driver/freq/neb header.
func (r *nwchemRun) buildCalculationBlock() {
	r.calcBlock = &block{}
	if r.Q.Type == qcin.NMR {
		r.calcBlock.add("property", "shielding")
	}
	if len(r.calcSpecs) == 0 {
		return
	}
	if r.calcBlock.empty() {
		switch r.Q.Type {
		case qcin.OPT, qcin.ConstrOPT, qcin.TS, qcin.OptFreq:
			r.calcBlock.header = "driver"
		case qcin.Freq:
			r.calcBlock.header = "freq"
		case qcin.MEP:
			if r.stringMethod {
				r.calcBlock.header = "string"
			} else {
				r.calcBlock.header = "neb"
			}
		}
	}
	r.calcBlock.add(r.calcSpecs...)
}

// buildAncillary renders the ancillary block: the continuum-solvation
// sub-block (with the specifications that belong right after its header),
// the bare specification directives, and the nested freq sub-block of an
// opt+freq run.
func (r *nwchemRun) buildAncillary() error {
	r.ancillary = &block{}
	if err := r.buildSolvation(); err != nil {
		return err
	}
	r.ancillary.add(r.loose...)
	if len(r.freqSpecs) > 0 {
		fb := &block{header: "freq"}
		fb.add(r.freqSpecs...)
		fb.close()
		r.tail = append(r.tail, fb.render())
	}
	return nil
}

// buildSolvation emits the cosmo sub-block when a solvent is requested
// and validates the solvation model against the theory level. The default
// radii used by NWChem are a complex combination of sources (see
// https://nwchemgit.github.io/Solvation-Models); custom per-element radii
// go to a side parameter file referenced from the block.
func (r *nwchemRun) buildSolvation() error {
	solvent := strings.TrimSpace(r.Q.Parameters.Solvent)
	if solvent == "" || strings.EqualFold(solvent, "vacuum") {
		return nil
	}
	model := strings.ToLower(r.Q.Parameters.SolvationModel)
	keyword := qcin.GetSolvent(solvent, "nwchem")
	r.ancillary.add("cosmo")
	r.ancillary.add(r.solSpecs...)
	//minbem 3 / ificos 1 are the grids recommended by Marenich, Cramer
	//and Truhlar, J. Phys. Chem. B 2009, 113, 6378 (doi:10.1021/jp810292n)
	r.ancillary.add("minbem 3", "ificos 1", "solvent "+keyword)
	switch model {
	case "cosmo":
	case "smd", "smd18":
		r.ancillary.add("do_cosmo_smd")
		if r.theory != "dft" {
			return fmt.Errorf("%w: the SMD model is only available with DFT in NWChem", qcin.ErrUnsupportedSolvationModel)
		}
	default:
		return fmt.Errorf("%w: solvation model '%s' is not implemented in NWChem", qcin.ErrUnsupportedSolvationModel, r.Q.Parameters.SolvationModel)
	}
	if p := strings.ToLower(r.Q.Parameters.SolvationRadii); p != "" && p != "default" {
		return fmt.Errorf("%w: only the default solvation radii are supported in NWChem; use custom solvation radii to set others by hand", qcin.ErrUnsupportedSolvationModel)
	}
	if r.Q.Parameters.CustomSolvationRadii != "" {
		radii, err := parseSolvationRadii(r.Q.Parameters.CustomSolvationRadii)
		if err != nil {
			return err
		}
		var lines []string
		for _, rad := range radii {
			lines = append(lines, fmt.Sprintf("%s %s", rad.element, strconv.FormatFloat(rad.value, 'g', -1, 64)))
		}
		name := r.name + "_sol.parameters"
		r.artifacts = append(r.artifacts, Artifact{Name: name, Content: strings.Join(lines, "\n") + "\n"})
		r.ancillary.add("parameters " + name)
		r.warn("additional file %s was generated; it must accompany the input for the calculation to run", name)
	}
	return nil
}

type radiusEntry struct {
	element string
	value   float64
}

// parseSolvationRadii parses an "element=radius;..." list, restoring the
// canonical case of each element. Order of first appearance is kept, and
// a repeated element keeps its last value.
func parseSolvationRadii(s string) ([]radiusEntry, error) {
	var out []radiusEntry
	seen := map[string]int{}
	for _, item := range strings.Split(s, ";") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		parts := strings.Split(item, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: invalid custom solvation radius specification '%s': must follow the pattern '<atom1>=<radius1>;...'", qcin.ErrInvalidParameter, item)
		}
		el, ok := qcin.CanonicalSymbol(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, fmt.Errorf("%w: invalid element in custom solvation radius specifications: '%s'", qcin.ErrInvalidParameter, strings.TrimSpace(parts[0]))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid custom solvation radius for element %s: '%s'", qcin.ErrInvalidParameter, el, strings.TrimSpace(parts[1]))
		}
		if i, dup := seen[el]; dup {
			out[i].value = v
			continue
		}
		seen[el] = len(out)
		out = append(out, radiusEntry{element: el, value: v})
	}
	return out, nil
}

// buildConstraints renders the restraints of a constrained optimization
// into a zcoord sub-block, and any scanned constraints into a second one.
// A constraint that declares both contributes to both.
func (r *nwchemRun) buildConstraints() error {
	if r.Q.Type != qcin.ConstrOPT {
		return nil
	}
	if len(r.Q.Constraints) == 0 {
		return fmt.Errorf("%w: no constraint in constrained optimisation mode", qcin.ErrInvalidParameter)
	}
	_, coords, err := qcin.Coords(qcin.CleanXYZ(r.Q.XYZ))
	if err != nil {
		return err
	}
	var restraints, scans []string
	for _, c := range r.Q.Constraints {
		frags, err := c.Fragments(coords)
		if err != nil {
			return err
		}
		for _, f := range frags {
			switch f.Kind {
			case qcin.FragmentRestraint:
				restraints = append(restraints, f.Text)
			case qcin.FragmentScan:
				scans = append(scans, f.Text)
			}
		}
	}
	r.tail = append(r.tail, zcoordBlock(restraints))
	if len(scans) > 0 {
		r.tail = append(r.tail, zcoordBlock(scans))
	}
	return nil
}

func zcoordBlock(entries []string) string {
	lines := append([]string{"geometry adjust", "zcoord"}, entries...)
	lines = append(lines, "end", "end")
	return strings.Join(lines, "\n") + "\n"
}

// handleXYZ cleans the geometry and reformats it to one line per atom.
func (r *nwchemRun) handleXYZ() error {
	var lines []string
	for _, l := range strings.Split(qcin.CleanXYZ(r.Q.XYZ), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: no geometry given", qcin.ErrMissingParameter)
	}
	r.xyz = strings.Join(lines, "\n") + "\n"
	return nil
}

// resolveBasis fills the basis block by exactly one of two paths: a plain
// library reference for all atoms, or a spliced block mixing
// database-supplied per-element sections with the library default for the
// rest.
func (O *NWChemHandle) resolveBasis(r *nwchemRun) error {
	base := qcin.GetBasisSet(r.Q.Parameters.BasisSet, "nwchem")
	custom := r.Q.Parameters.CustomBasisSets
	if base != "" && len(custom) == 0 {
		r.basisBlock = fmt.Sprintf("basis\n* library %s\nend", base)
		return nil
	}
	if len(custom) == 0 {
		return fmt.Errorf("%w: you must specify a basis set for an NWChem calculation", qcin.ErrMissingParameter)
	}
	return O.spliceBasis(r, base, custom)
}

// spliceBasis builds the custom-splice basis block. Overrides for
// elements absent from the geometry are dead and ignored. For each custom
// element the database is queried best-effort: on failure the raw user
// keyword becomes a library reference for that element (without ECP) and
// a warning is recorded. Collected ECP sections form a trailing sub-block.
func (O *NWChemHandle) spliceBasis(r *nwchemRun, base string, custom map[string]string) error {
	unique := qcin.UniqueElements(r.xyz)
	var customAtoms, normalAtoms []string
	for _, el := range unique {
		if _, ok := custom[el]; ok {
			customAtoms = append(customAtoms, el)
		} else {
			normalAtoms = append(normalAtoms, el)
		}
	}
	//map iteration order is not deterministic; alphabetical keeps the
	//spliced block stable between runs
	sort.Strings(customAtoms)
	if len(customAtoms) == 0 {
		//every override was dead, back to the default path
		if base == "" {
			return fmt.Errorf("%w: you must specify a basis set for an NWChem calculation", qcin.ErrMissingParameter)
		}
		r.basisBlock = fmt.Sprintf("basis\n* library %s\nend", base)
		return nil
	}
	var sections, fallbacks, ecps []string
	for _, el := range customAtoms {
		if _, ok := qcin.AtomicNumber(el); !ok {
			return fmt.Errorf("%w: invalid atom in custom basis set string: '%s'", qcin.ErrInvalidParameter, el)
		}
		keyword := custom[el]
		text := ""
		err := fmt.Errorf("no basis-set database configured")
		if O.db != nil {
			text, err = O.db.Get(el, keyword)
		}
		var bs, ecp string
		if err == nil {
			bs, ecp, err = basis.Sections(text)
		}
		if err != nil {
			//Some basis sets are built into NWChem under names the
			//database does not know (e.g. SDD). Feed the user keyword in
			//as a library reference and hope the engine knows it; the
			//ECP, if the set has one, is lost.
			r.warn("basis set %s for %s couldn't be pulled from the basis-set database; the ECP will not be added to this basis set", keyword, el)
			fallbacks = append(fallbacks, fmt.Sprintf("%s library %s", el, keyword))
			continue
		}
		sections = append(sections, bs)
		if ecp != "" {
			ecps = append(ecps, ecp)
		}
	}
	lines := []string{"basis spherical"}
	lines = append(lines, sections...)
	if len(normalAtoms) > 0 {
		if base == "" {
			return fmt.Errorf("%w: elements without a custom basis set (%s) need a default basis set", qcin.ErrMissingParameter, strings.Join(normalAtoms, " "))
		}
		lines = append(lines, fmt.Sprintf("* library %s except %s", base, strings.Join(customAtoms, " ")))
	}
	lines = append(lines, fallbacks...)
	lines = append(lines, "end")
	if len(ecps) > 0 {
		lines = append(lines, "", "ecp")
		lines = append(lines, ecps...)
		lines = append(lines, "end")
	}
	r.basisBlock = strings.Join(lines, "\n")
	return nil
}

// closeBlocks guarantees every non-empty block carries its closing
// marker, no matter which stage touched it last. Safe to run any number
// of times.
func (r *nwchemRun) closeBlocks() {
	r.methodBlock.close()
	r.calcBlock.close()
	r.ancillary.close()
}

// assemble interpolates the finished blocks into the document skeleton
// and strips incidental indentation from every line.
func (r *nwchemRun) assemble() string {
	var ancillary strings.Builder
	ancillary.WriteString(r.ancillary.render())
	for _, t := range r.tail {
		ancillary.WriteString(t)
	}
	raw := fmt.Sprintf(`TITLE "%s"
start %s
memory total %s
charge %d

geometry units angstroms
%send

%s

%s%s%s
%s
`,
		r.Q.Header,
		r.name,
		r.mem,
		r.Q.Charge,
		r.xyz,
		r.basisBlock,
		r.methodBlock.render(),
		r.calcBlock.render(),
		ancillary.String(),
		strings.Join(r.tasks, "\n"))
	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}
