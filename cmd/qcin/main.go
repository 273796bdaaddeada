/*
 * main.go, part of qcin.
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

//qcin generates input files for quantum-chemistry programs from TOML job
//descriptions.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/qcin"
	"github.com/rmera/qcin/basis"
	"github.com/rmera/qcin/qm"
)

//Build-time variables, set via ldflags.
var (
	Version = "dev"
)

//Global flags
var (
	outputDir   string
	basisDBPath string
	jobName     string
	debug       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qcin",
	Short: "Generate quantum-chemistry input files from job descriptions",
	Long: `qcin reads engine-independent job descriptions (TOML files carrying the
method, basis set, solvent, constraints and geometry of a calculation) and
writes the input file a specific QM program expects, plus any side files
the calculation needs.`,
}

var genCmd = &cobra.Command{
	Use:   "gen <job.toml>",
	Short: "Generate the engine input for one job file",
	Args:  cobra.ExactArgs(1),
	RunE:  generate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qcin %s\n", Version)
	},
}

func init() {
	genCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory for the generated files")
	genCmd.Flags().StringVar(&basisDBPath, "basis-db", "", "path to a basis-set database snapshot (gzip JSON)")
	genCmd.Flags().StringVar(&jobName, "name", "", "override the job name")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(versionCmd)
}

//A job file, with the defaults filled before decoding.
type rawJob struct {
	Name                 string            `toml:"name"`
	Header               string            `toml:"header"`
	Type                 string            `toml:"type"`
	Method               string            `toml:"method"`
	Theory               string            `toml:"theory"`
	Basis                string            `toml:"basis"`
	CustomBasisSets      map[string]string `toml:"custom_basis_sets"`
	Solvent              string            `toml:"solvent"`
	SolvationModel       string            `toml:"solvation_model"`
	SolvationRadii       string            `toml:"solvation_radii"`
	CustomSolvationRadii string            `toml:"custom_solvation_radii"`
	Specifications       string            `toml:"specifications"`
	Charge               int               `toml:"charge"`
	Multiplicity         int               `toml:"multiplicity"`
	Memory               string            `toml:"memory"`
	XYZ                  string            `toml:"xyz"`
	XYZFile              string            `toml:"xyz_file"`
	D3                   bool              `toml:"d3"`
	D3BJ                 bool              `toml:"d3bj"`
	Constraints          []rawConstraint   `toml:"constraints"`
}

type rawConstraint struct {
	Kind  string  `toml:"kind"`
	Atoms []int   `toml:"atoms"`
	Value float64 `toml:"value"`
	Scan  bool    `toml:"scan"`
	From  float64 `toml:"from"`
	To    float64 `toml:"to"`
	Steps int     `toml:"steps"`
}

func loadJob(path string) (*qcin.Calculation, error) {
	raw := rawJob{
		Type:         "sp",
		Theory:       qcin.DFT,
		Memory:       "1000mb",
		Multiplicity: 1,
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("cannot read job file %s: %w", path, err)
	}
	return raw.toCalculation(filepath.Dir(path))
}

func (raw *rawJob) toCalculation(dir string) (*qcin.Calculation, error) {
	ctype, err := qcin.ParseCalcType(raw.Type)
	if err != nil {
		return nil, err
	}
	mem, err := qcin.StandardizeMemory(raw.Memory)
	if err != nil {
		return nil, err
	}
	xyz := raw.XYZ
	if raw.XYZFile != "" {
		path := raw.XYZFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if xyz, err = qcin.ReadXYZFile(path); err != nil {
			return nil, err
		}
	} else if xyz, err = qcin.StandardizeXYZ(xyz); err != nil {
		return nil, err
	}
	var constraints []*qcin.Constraint
	for _, rc := range raw.Constraints {
		kind, err := qcin.ParseConstraintKind(rc.Kind)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, &qcin.Constraint{
			Kind:  kind,
			Atoms: rc.Atoms,
			Value: rc.Value,
			Scan:  rc.Scan,
			From:  rc.From,
			To:    rc.To,
			Steps: rc.Steps,
		})
	}
	name := raw.Name
	if jobName != "" {
		name = jobName
	}
	if name == "" {
		name = "qcin"
	}
	header := raw.Header
	if header == "" {
		header = fmt.Sprintf("%s calculation generated by qcin", raw.Type)
	}
	return &qcin.Calculation{
		Type:         ctype,
		Name:         name,
		Header:       header,
		Charge:       raw.Charge,
		Multiplicity: raw.Multiplicity,
		Mem:          mem,
		XYZ:          xyz,
		Constraints:  constraints,
		Parameters: qcin.Parameters{
			Method:               raw.Method,
			TheoryLevel:          strings.ToLower(raw.Theory),
			BasisSet:             raw.Basis,
			CustomBasisSets:      raw.CustomBasisSets,
			Solvent:              raw.Solvent,
			SolvationModel:       raw.SolvationModel,
			SolvationRadii:       raw.SolvationRadii,
			CustomSolvationRadii: raw.CustomSolvationRadii,
			Specifications:       raw.Specifications,
			D3:                   raw.D3,
			D3BJ:                 raw.D3BJ,
		},
	}, nil
}

func newLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableCaller = true
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func generate(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	calc, err := loadJob(args[0])
	if err != nil {
		return err
	}
	handle := qm.NewNWChemHandle()
	if basisDBPath != "" {
		db, err := basis.OpenSnapshot(basisDBPath)
		if err != nil {
			return err
		}
		handle.SetDB(db)
	}
	res, err := handle.GenerateInput(calc)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Warn(w.Msg)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	inputPath := filepath.Join(outputDir, calc.Name+".nw")
	if err := os.WriteFile(inputPath, []byte(res.Input), 0644); err != nil {
		return err
	}
	log.Infow("input file written", "path", inputPath)
	for _, a := range res.Artifacts {
		path := filepath.Join(outputDir, a.Name)
		if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
			return err
		}
		log.Infow("side file written", "path", path)
	}
	return nil
}
