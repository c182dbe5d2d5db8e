package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	config "github.com/bingxyi/PedidosAPI-Project/configs"
)

// SendOrderEmail mails an order-created notification to the back-office
// address configured via ORDER_NOTIFY_EMAIL. A no-op when the address or the
// sender is not configured.
func SendOrderEmail(orderID uint, customerName string, total decimal.Decimal) error {
	cfg := config.LoadEmailConfig()
	if cfg.NotifyEmail == "" || cfg.SenderEmail == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	totalStr := total.StringFixed(2)
	subject := fmt.Sprintf("New order #%d received", orderID)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>A new order has been placed.</p>
            <ul>
                <li>Order ID: %d</li>
                <li>Customer: %s</li>
                <li>Total: %s</li>
            </ul>
        </body>
        </html>`, orderID, customerName, totalStr)

	bodyText := fmt.Sprintf(
		"A new order has been placed.\n\nOrder ID: %d\nCustomer: %s\nTotal: %s\n",
		orderID, customerName, totalStr)

	input := &ses.SendEmailInput{
		Source: aws.String(cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{cfg.NotifyEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.WithField("order_id", orderID).Info("Order notification email sent")
	return nil
}
