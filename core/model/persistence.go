package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// SaveModel は値を gob 形式でファイルに保存する
//
// 使用例:
//
//	var lu linear.LU
//	// ... lu.Fit(A) ...
//	err := model.SaveModel(&lu, "factors.gob")
//
// 書き込みに失敗した場合だけでなく、Close の失敗もエラーとして返す。
func SaveModel(model interface{}, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", filename)
		}
	}()

	return SaveModelToWriter(model, file)
}

// LoadModel はファイルから gob 形式の値を読み込む
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter は値を io.Writer に gob 形式で書き出す
func SaveModelToWriter(model interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader は io.Reader から gob 形式の値を読み込む
func LoadModelFromReader(model interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
