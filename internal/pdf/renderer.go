package pdf

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// relPrefix — фиксированный префикс, под которым пути артефактов хранятся в БД.
const relPrefix = "generated_pdfs"

// Renderer генерирует одностраничный PDF-паспорт изделия: базовая картинка
// обрезается до (0,0,width,height), кладётся на страницу с отметкой времени.
// Имя файла item_{id}_{timestamp} с точностью до секунды: два рендера одного
// изделия в одну секунду могут перезаписать друг друга (известное ограничение).
type Renderer struct {
	baseImagePath string
	dir           string
}

// NewRenderer создаёт генератор. dir — каталог, куда пишутся PDF;
// относительные пути в БД разрешаются относительно него.
func NewRenderer(baseImagePath, dir string) *Renderer {
	return &Renderer{baseImagePath: baseImagePath, dir: dir}
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Render создаёт паспорт и возвращает относительный путь файла.
func (r *Renderer) Render(itemID int64, width, height float64) (string, error) {
	f, err := os.Open(r.baseImagePath)
	if err != nil {
		return "", fmt.Errorf("open base image: %w", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return "", fmt.Errorf("decode base image: %w", err)
	}

	w, h := int(width), int(height)
	bounds := img.Bounds()
	if w <= 0 || h <= 0 || w > bounds.Dx() || h > bounds.Dy() {
		return "", fmt.Errorf("crop %dx%d out of base image bounds %dx%d", w, h, bounds.Dx(), bounds.Dy())
	}

	si, ok := img.(subImager)
	if !ok {
		return "", fmt.Errorf("base image format %T does not support cropping", img)
	}
	cropped := si.SubImage(image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Min.Y+h))

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create pdf dir: %w", err)
	}

	// временный растр уникален на вызов, чтобы конкурентные рендеры не делили файл
	tempPath := filepath.Join(r.dir, "temp_"+uuid.NewString()+".jpg")
	tf, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("create temp raster: %w", err)
	}
	err = jpeg.Encode(tf, cropped, nil)
	if cerr := tf.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("encode temp raster: %w", err)
	}
	// растр убирается даже если сборка PDF упала
	defer os.Remove(tempPath)

	now := time.Now()
	name := fmt.Sprintf("item_%d_%s.pdf", itemID, now.Format("20060102_150405"))
	outPath := filepath.Join(r.dir, name)

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.ImageOptions(tempPath, 50, 100, width, height, false,
		gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.Text(50, 120+height, "Generated at: "+now.Format("2006-01-02 15:04:05"))
	if err := doc.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("compose pdf: %w", err)
	}

	return path.Join(relPrefix, name), nil
}

// Remove удаляет файл артефакта по относительному пути из БД.
// Отсутствующий файл не ошибка: строка могла пережить файл.
func (r *Renderer) Remove(relPath string) error {
	full := filepath.Join(r.dir, filepath.Base(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
