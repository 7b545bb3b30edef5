package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/consensys/bavard"
)

type templateData struct {
	Curve    string
	CurveID  string
	CurveDir string
	RootPath string
}

//go:generate go run main.go
func main() {
	bn254 := templateData{
		Curve:    "BN254",
		CurveID:  "BN254",
		CurveDir: "bn254",
		RootPath: "../../instance/bn254",
	}
	bls12_377 := templateData{
		Curve:    "BLS12-377",
		CurveID:  "BLS12_377",
		CurveDir: "bls12-377",
		RootPath: "../../instance/bls12-377",
	}
	bls12_381 := templateData{
		Curve:    "BLS12-381",
		CurveID:  "BLS12_381",
		CurveDir: "bls12-381",
		RootPath: "../../instance/bls12-381",
	}
	data := []templateData{bn254, bls12_377, bls12_381}

	const copyrightHolder = "Consensys Software Inc."
	var bgen = bavard.NewBatchGenerator(copyrightHolder, 2020, "gnark-playground")

	for _, d := range data {
		entries := []bavard.Entry{
			{File: filepath.Join(d.RootPath, "instance.go"), Templates: []string{"instance.go.tmpl"}},
			{File: filepath.Join(d.RootPath, "marshal.go"), Templates: []string{"instance.marshal.go.tmpl"}},
			{File: filepath.Join(d.RootPath, "instance_test.go"), Templates: []string{"instance.test.go.tmpl"}},
			{File: filepath.Join(d.RootPath, "marshal_test.go"), Templates: []string{"instance.marshal.test.go.tmpl"}},
		}
		if err := bgen.Generate(d, "instance", "./templates/", entries...); err != nil {
			panic(err)
		}
	}

	// run go fmt on the generated packages
	cmd := exec.Command("gofmt", "-s", "-w", "../../instance")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}
}
