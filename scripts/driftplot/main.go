/*driftplot plots the table written by the drift script on log-log axes.*/
package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s drift_table out_file", os.Args[0])
	}
	tableFile, outFile := os.Args[1], os.Args[2]

	cols, err := table.ReadTable(tableFile, []int{0, 1}, nil)
	if err != nil { log.Fatal(err.Error()) }
	dts, drifts := cols[0], cols[1]

	plt.Reset()
	plt.Plot(dts, drifts, "b", plt.LW(2))
	plt.Plot(dts, drifts, "ok")

	plt.XLabel(`$\Delta t$`, plt.FontSize(16))
	plt.YLabel(`$|\Delta E / E_0|$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))

	plt.SaveFig(outFile)
	plt.Execute()
}
