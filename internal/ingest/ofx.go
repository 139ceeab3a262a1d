package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/jgrech/bankflow/internal/model"
)

// OFXSource reads OFX/QFX exports, the third statement format banks offer.
// OFX already carries typed dates and signed amounts (negative for debits),
// so like the tabular case it bypasses the line assembler.
type OFXSource struct{}

// Format returns the source name.
func (s *OFXSource) Format() string { return "ofx" }

var (
	// The closing tag is optional: SGML-style OFX leaves elements open.
	severityCase = regexp.MustCompile(`(?im)<SEVERITY>(Info|Warn|Error)\s*(</SEVERITY>)?$`)
	unclosedTag  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues in bank-generated OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityCase.ReplaceAllStringFunc(content, strings.ToUpper)
	content = unclosedTag.ReplaceAllString(content, "$1>")
	return content
}

// Parse reads an OFX/QFX file and maps its bank and credit card statement
// transactions into raw records.
func (s *OFXSource) Parse(ctx context.Context, path string) ([]model.Transaction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OFX %s: %w", path, err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("parsing OFX %s: %w", path, err)
	}

	var txns []model.Transaction

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txns = append(txns, convertOFX(ofxTx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txns = append(txns, convertOFX(ofxTx))
			}
		}
	}

	slog.Debug("parsed OFX statement", "path", path, "transactions", len(txns))
	return txns, nil
}

// convertOFX maps one OFX transaction to a raw record. The OFX amount is
// already signed the way the engine expects: negative for debits.
func convertOFX(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	detail := strings.TrimSpace(string(ofxTx.Name))
	if memo := strings.TrimSpace(string(ofxTx.Memo)); memo != "" && !strings.EqualFold(memo, detail) {
		if detail == "" {
			detail = memo
		} else {
			detail = detail + " " + memo
		}
	}

	return model.Transaction{
		Date:   ofxTx.DtPosted.Time,
		Detail: detail,
		Amount: amount,
	}
}
