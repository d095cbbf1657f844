// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/workflow"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for a reviewed payment
func (s *Service) GenerateReceipt(activity *workflow.PaymentActivity) (*bytes.Buffer, error) {
	// Prepare template data
	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("RCP-%s", activity.TransactionID),
		ReceiptDate:   time.Now().Format("January 2, 2006"),
		Activity:      activity,
		Currency:      s.config.Payment.Currency,
		Company: CompanyInfo{
			Name:    s.config.App.CompanyName,
			Address: s.config.App.CompanyAddress,
			Phone:   s.config.App.CompanyPhone,
			Email:   s.config.App.CompanyEmail,
			Website: s.config.App.CompanyWebsite,
		},
	}

	// Generate HTML from template
	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	// Convert HTML to PDF
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	// Set PDF options
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	// Add page from HTML content
	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	// Create PDF
	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string                    `json:"receipt_number"`
	ReceiptDate   string                    `json:"receipt_date"`
	Activity      *workflow.PaymentActivity `json:"activity"`
	Currency      string                    `json:"currency"`
	Company       CompanyInfo               `json:"company"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .company-info {
            flex: 1;
        }
        .receipt-info {
            text-align: right;
            flex: 1;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #0d9488;
            margin-bottom: 10px;
        }
        .details-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .details-table th,
        .details-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .details-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .amount-col {
            text-align: right;
            width: 120px;
        }
        .status-badge {
            display: inline-block;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 12px;
            font-weight: bold;
            text-transform: uppercase;
        }
        .status-verified {
            background-color: #dcfce7;
            color: #166534;
        }
        .status-rejected {
            background-color: #fee2e2;
            color: #991b1b;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Address}}</p>
            <p>Phone: {{.Company.Phone}}</p>
            <p>Email: {{.Company.Email}}</p>
            <p>{{.Company.Website}}</p>
        </div>
        <div class="receipt-info">
            <div class="receipt-title">PAYMENT RECEIPT</div>
            <p><strong>Receipt #:</strong> {{.ReceiptNumber}}</p>
            <p><strong>Receipt Date:</strong> {{.ReceiptDate}}</p>
            <p><strong>Transaction #:</strong> {{.Activity.TransactionID}}</p>
        </div>
    </div>

    <table class="details-table">
        <thead>
            <tr>
                <th>Customer</th>
                <th>Payment Type</th>
                <th>Reviewed On</th>
                <th>Status</th>
                <th class="amount-col">Amount</th>
            </tr>
        </thead>
        <tbody>
            <tr>
                <td><strong>{{.Activity.User}}</strong></td>
                <td>{{.Activity.Type}}</td>
                <td>{{.Activity.Timestamp}}</td>
                <td>
                    <span class="status-badge {{if eq .Activity.Action "Verified"}}status-verified{{else}}status-rejected{{end}}">
                        {{.Activity.Action}}
                    </span>
                </td>
                <td class="amount-col">{{.Activity.Amount}} {{.Currency}}</td>
            </tr>
        </tbody>
    </table>

    <div class="footer">
        <p>Thank you for choosing {{.Company.Name}}!</p>
        <p>If you have any questions about this receipt, please contact us at {{.Company.Email}} or {{.Company.Phone}}</p>
    </div>
</body>
</html>
`
