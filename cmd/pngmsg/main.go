package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	pngmsg "github.com/logicossoftware/go-pngmsg"
)

func loadPng(path string) (*pngmsg.Png, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return pngmsg.ParsePng(raw)
}

func writePng(path string, p *pngmsg.Png) error {
	return os.WriteFile(path, p.Bytes(), 0o644)
}

func main() {
	log.SetFlags(0)

	var (
		filePath  string
		chunkType string
		message   string
		output    string
		compress  string
	)

	root := &cobra.Command{
		Use:           "pngmsg",
		Short:         "Hide, reveal, and remove text messages in PNG files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Hide a message in a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := pngmsg.ParseCompression(compress)
			if err != nil {
				return err
			}
			p, err := loadPng(filePath)
			if err != nil {
				return err
			}
			if err := pngmsg.EncodeMessage(p, chunkType, message, pngmsg.WithCompression(comp)); err != nil {
				return err
			}
			out := output
			if out == "" {
				out = filePath
			}
			return writePng(out, p)
		},
	}
	encodeCmd.Flags().StringVarP(&filePath, "file", "f", "", "input PNG file")
	encodeCmd.Flags().StringVarP(&chunkType, "chunk-type", "c", "", "4-character chunk type to store the message under")
	encodeCmd.Flags().StringVarP(&message, "message", "m", "", "message to hide")
	encodeCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	encodeCmd.Flags().StringVarP(&compress, "compress", "z", "none", "message compression: none|zstd|lz4|brotli")
	_ = encodeCmd.MarkFlagRequired("file")
	_ = encodeCmd.MarkFlagRequired("chunk-type")
	_ = encodeCmd.MarkFlagRequired("message")

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Reveal the message stored under a chunk type",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPng(filePath)
			if err != nil {
				return err
			}
			msg, err := pngmsg.DecodeMessage(p, chunkType)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	decodeCmd.Flags().StringVarP(&filePath, "file", "f", "", "input PNG file")
	decodeCmd.Flags().StringVarP(&chunkType, "chunk-type", "c", "", "chunk type to read")
	_ = decodeCmd.MarkFlagRequired("file")
	_ = decodeCmd.MarkFlagRequired("chunk-type")

	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the first chunk of the given type",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPng(filePath)
			if err != nil {
				return err
			}
			removed, err := p.RemoveChunk(chunkType)
			if err != nil {
				return err
			}
			if err := writePng(filePath, p); err != nil {
				return err
			}
			fmt.Println("removed:", removed)
			return nil
		},
	}
	removeCmd.Flags().StringVarP(&filePath, "file", "f", "", "input PNG file")
	removeCmd.Flags().StringVarP(&chunkType, "chunk-type", "c", "", "chunk type to remove")
	_ = removeCmd.MarkFlagRequired("file")
	_ = removeCmd.MarkFlagRequired("chunk-type")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "List every chunk in the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPng(filePath)
			if err != nil {
				return err
			}
			for i, c := range p.Chunks() {
				fmt.Printf("[%d] %s\n", i, c)
			}
			return nil
		},
	}
	printCmd.Flags().StringVarP(&filePath, "file", "f", "", "input PNG file")
	_ = printCmd.MarkFlagRequired("file")

	root.AddCommand(encodeCmd, decodeCmd, removeCmd, printCmd)

	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}
