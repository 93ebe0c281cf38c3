package helpers

import (
	"fmt"
	"html"
)

// BuildSimpleHTML renders a transactional email with a title and an HTML body.
func BuildSimpleHTML(title, body string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif; background:#f9f9f9;">
    <table width="100%%" cellpadding="0" cellspacing="0" bgcolor="#f9f9f9">
      <tr>
        <td align="center" style="padding:32px 0;">
          <table width="500" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:8px; box-shadow:0 1px 6px #eee;">
            <tr>
              <td>
                <h2 style="color:#c0392b; margin-top:0;">%s</h2>
                <div style="font-size:16px; color:#222;">%s</div>
                <hr style="margin:32px 0 16px 0; border:0; border-top:1px solid #eee;">
                <div style="font-size:12px; color:#999;">Mensagem automática do Achados e Perdidos. Não responda.</div>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, html.EscapeString(title), body)
}

func BuildClaimReceivedHTML(name, itemName string) string {
	body := fmt.Sprintf(`
      <p>Olá, %s.</p>
      <p>Recebemos sua reivindicação do item <strong>%s</strong>.</p>
      <p>Ela será analisada pela equipe responsável e você receberá um e-mail com o resultado.</p>
    `, html.EscapeString(name), html.EscapeString(itemName))
	return BuildSimpleHTML("Reivindicação recebida", body)
}

func BuildClaimApprovedHTML(name, itemName string) string {
	body := fmt.Sprintf(`
      <p>Olá, %s.</p>
      <p>Sua reivindicação do item <strong>%s</strong> foi <strong>aprovada</strong>.</p>
      <p>Procure a secretaria com um documento de identificação para retirar o item.</p>
    `, html.EscapeString(name), html.EscapeString(itemName))
	return BuildSimpleHTML("Reivindicação aprovada", body)
}

func BuildClaimRejectedHTML(name, itemName string) string {
	body := fmt.Sprintf(`
      <p>Olá, %s.</p>
      <p>Sua reivindicação do item <strong>%s</strong> foi <strong>recusada</strong>.</p>
      <p>Em caso de dúvidas, procure a secretaria.</p>
    `, html.EscapeString(name), html.EscapeString(itemName))
	return BuildSimpleHTML("Reivindicação recusada", body)
}

func BuildPasswordResetHTML(name, link string) string {
	body := fmt.Sprintf(`
      <p>Olá, %s.</p>
      <p>Recebemos um pedido para redefinir sua senha. O link é válido por 1 hora.</p>
      <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#c0392b;color:#fff;text-decoration:none;border-radius:6px;font-weight:600;">Redefinir senha</a></p>
      <p style="font-size:12px;color:#999;margin-top:16px;">Se o botão não funcionar, copie o link: %s</p>
      <p style="font-size:12px;color:#999;">Se você não pediu a redefinição, ignore este e-mail.</p>
    `, html.EscapeString(name), link, html.EscapeString(link))
	return BuildSimpleHTML("Redefinição de senha", body)
}
